package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	httpcontext "github.com/mediatone/mediatone-server/internal/api/http/context"
	"github.com/mediatone/mediatone-server/internal/model"
	"github.com/mediatone/mediatone-server/internal/testutil"
)

func TestRequireRole_Wrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		allowed     []model.Role
		identity    *model.Identity
		wantStatus  int
		expectNext  bool
	}{
		{
			name:       "allowed role",
			allowed:    []model.Role{model.RoleMusician, model.RoleAdmin},
			identity:   &model.Identity{ID: uuid.New(), Role: model.RoleMusician},
			wantStatus: http.StatusOK,
			expectNext: true,
		},
		{
			name:       "admin allowed",
			allowed:    []model.Role{model.RoleMusician, model.RoleAdmin},
			identity:   &model.Identity{ID: uuid.New(), Role: model.RoleAdmin},
			wantStatus: http.StatusOK,
			expectNext: true,
		},
		{
			name:       "refused role",
			allowed:    []model.Role{model.RoleMusician, model.RoleAdmin},
			identity:   &model.Identity{ID: uuid.New(), Role: model.RoleListener},
			wantStatus: http.StatusForbidden,
			expectNext: false,
		},
		{
			name:       "no identity in context",
			allowed:    []model.Role{model.RoleMusician},
			identity:   nil,
			wantStatus: http.StatusUnauthorized,
			expectNext: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := httpcontext.NewManager()
			m := NewRequireRole(cm, testutil.MakeNoopLogger(), tt.allowed...)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodPost, "/api/videos/upload", nil)
			if tt.identity != nil {
				req = req.WithContext(cm.SetIdentityToContext(req.Context(), *tt.identity))
			}
			rec := httptest.NewRecorder()

			m.Wrap(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
		})
	}
}
