package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/smart-records/internal"
	"github.com/frahmantamala/smart-records/internal/auth"
)

// fakeAuthService answers with fixed credentials so handler tests cover
// only the HTTP mapping.
type fakeAuthService struct {
	loggedOut bool
}

func (f *fakeAuthService) Register(username, password string) error {
	if username == "taken" {
		return internal.ErrUsernameTaken
	}
	return nil
}

func (f *fakeAuthService) Login(username, password string) (*auth.Session, string, error) {
	if username == "admin" && password == "admin123" {
		return &auth.Session{UserID: 1, Username: "admin"}, "token-for-admin", nil
	}
	return nil, "", internal.ErrInvalidCredentials
}

func (f *fakeAuthService) Logout() {
	f.loggedOut = true
}

func (f *fakeAuthService) CurrentUser() *auth.Session {
	return nil
}

func (f *fakeAuthService) ValidateAccessToken(tokenString string) (*auth.Claims, error) {
	if tokenString == "token-for-admin" {
		return &auth.Claims{UserID: 1, Username: "admin"}, nil
	}
	return nil, internal.ErrInvalidToken
}

var _ = Describe("Auth Handler", func() {
	var (
		handler *auth.Handler
		service *fakeAuthService
	)

	BeforeEach(func() {
		service = &fakeAuthService{}
		handler = auth.NewHandler(service)
	})

	Describe("Login", func() {
		It("should return the session and token for valid credentials", func() {
			req := httptest.NewRequest(http.MethodPost, "/auth/login",
				strings.NewReader(`{"username":"admin","password":"admin123"}`))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp auth.LoginResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Session.Username).To(Equal("admin"))
			Expect(resp.AccessToken).To(Equal("token-for-admin"))
		})

		It("should return 401 with the generic message for bad credentials", func() {
			req := httptest.NewRequest(http.MethodPost, "/auth/login",
				strings.NewReader(`{"username":"admin","password":"wrong"}`))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))

			var body internal.Response
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body.Error.Message).To(Equal("Invalid username or password"))
		})

		It("should return 400 for a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{broken`))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Register", func() {
		It("should return 201 on success", func() {
			req := httptest.NewRequest(http.MethodPost, "/auth/register",
				strings.NewReader(`{"username":"newuser","password":"long_enough"}`))
			w := httptest.NewRecorder()

			handler.Register(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
		})

		It("should return 409 for a taken username", func() {
			req := httptest.NewRequest(http.MethodPost, "/auth/register",
				strings.NewReader(`{"username":"taken","password":"long_enough"}`))
			w := httptest.NewRecorder()

			handler.Register(w, req)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})
	})

	Describe("Logout", func() {
		It("should clear the session and return 204", func() {
			req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
			w := httptest.NewRecorder()

			handler.Logout(w, req)

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(service.loggedOut).To(BeTrue())
		})
	})

	Describe("AuthMiddleware", func() {
		var protected http.Handler

		BeforeEach(func() {
			protected = handler.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				session, ok := auth.SessionFromContext(r.Context())
				Expect(ok).To(BeTrue())
				Expect(session.Username).To(Equal("admin"))
				w.WriteHeader(http.StatusOK)
			}))
		})

		It("should pass a valid bearer token through with the session in context", func() {
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			req.Header.Set("Authorization", "Bearer token-for-admin")
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("should reject a missing token", func() {
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should reject an invalid token", func() {
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			req.Header.Set("Authorization", "Bearer forged")
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should reject a header without the bearer scheme", func() {
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			req.Header.Set("Authorization", "token-for-admin")
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
