package authclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ichthyo-signup/internal/signupform"
)

func TestClient_Signup(t *testing.T) {
	creds := signupform.Credentials{Name: "Ada", Email: "ada@example.com", Password: "engine"}

	tests := map[string]struct {
		status int
		body   string
		want   signupform.Result
	}{
		"created": {
			status: http.StatusCreated,
			body:   `{"status":"success","message":"signup successful","data":{"access_token":"tok"}}`,
			want:   signupform.Result{Success: true},
		},
		"ok without envelope": {
			status: http.StatusOK,
			body:   ``,
			want:   signupform.Result{Success: true},
		},
		"2xx with error envelope": {
			status: http.StatusOK,
			body:   `{"status":"error","message":"Invalid credentials"}`,
			want:   signupform.Result{Success: false, Error: "Invalid credentials"},
		},
		"conflict": {
			status: http.StatusConflict,
			body:   `{"status":"error","message":"email already exists"}`,
			want:   signupform.Result{Success: false, Error: "email already exists"},
		},
		"unstructured failure": {
			status: http.StatusBadGateway,
			body:   "upstream unavailable\n",
			want:   signupform.Result{Success: false, Error: "API Error (status 502): upstream unavailable"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var received signupform.Credentials
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, SignupPath, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := New(srv.URL + "/")
			got, err := client.Signup(context.Background(), creds)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, creds, received)
		})
	}
}

func TestClient_SignupTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url).Signup(context.Background(), signupform.Credentials{})
	require.Error(t, err)
}

func TestClient_SignupHonoursContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := New(srv.URL).Signup(ctx, signupform.Credentials{Name: "Ada"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "expected deadline error, got %v", err)
}

func TestClient_DrivesController(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"status":"error","message":"email already exists"}`))
	}))
	defer srv.Close()

	form := signupform.NewController(New(srv.URL))
	form.HandleField(signupform.FieldEmail, "ada@example.com")
	require.NoError(t, form.Submit(context.Background()))

	s := form.State()
	assert.Equal(t, "email already exists", s.Error)
	assert.Equal(t, signupform.ErrorRejected, s.ErrorKind)
	assert.False(t, s.Pending)
}
