package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/homer-api/internal/application/usecase"
	"github.com/jhoicas/homer-api/internal/domain"
	"github.com/jhoicas/homer-api/internal/domain/entity"
	apphttp "github.com/jhoicas/homer-api/internal/interfaces/http"
)

// fakeRoleRepo devuelve los roles fijados por usuario; la DB es la autoridad
// para el guard, no la foto del token.
type fakeRoleRepo struct {
	byUser map[string]entity.RoleSet
}

func (f *fakeRoleRepo) ListByUser(ctx context.Context, userID string) (entity.RoleSet, error) {
	return f.byUser[userID], nil
}
func (f *fakeRoleRepo) Assign(ctx context.Context, userID, role string) error { return nil }
func (f *fakeRoleRepo) Revoke(ctx context.Context, userID, role string) error {
	return domain.ErrNotFound
}

type fakeUserRepo struct{}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}

func buildGuardApp(byUser map[string]entity.RoleSet) *fiber.App {
	roleUC := usecase.NewRoleUseCase(&fakeRoleRepo{byUser: byUser}, &fakeUserRepo{})

	app := fiber.New()
	admin := app.Group("/admin", apphttp.OptionalAuth(testJWTSecret), apphttp.AdminGuard(roleUC))
	admin.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("panel de administración")
	})
	return app
}

func doGuardRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAdminGuard_AdminEntra(t *testing.T) {
	app := buildGuardApp(map[string]entity.RoleSet{
		testUserID: {entity.RoleAdmin},
	})

	resp := doGuardRequest(t, app, tokenForRoles(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminGuard_NoAdminRedirigidoFuera(t *testing.T) {
	app := buildGuardApp(map[string]entity.RoleSet{
		testUserID: {entity.RoleMember},
	})

	resp := doGuardRequest(t, app, tokenForRoles(t, entity.RoleMember))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?error=unauthorized", resp.Header.Get("Location"),
		"el guard redirige fuera con el motivo en la query")
}

func TestAdminGuard_SinIdentidadRedirigidoFuera(t *testing.T) {
	app := buildGuardApp(nil)

	resp := doGuardRequest(t, app, "") // sin token
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?error=unauthorized", resp.Header.Get("Location"))
}

func TestAdminGuard_DecideLaDBNoElToken(t *testing.T) {
	// El token dice admin pero la DB ya no: el guard debe bloquear.
	app := buildGuardApp(map[string]entity.RoleSet{
		testUserID: {entity.RoleHost},
	})

	resp := doGuardRequest(t, app, tokenForRoles(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode,
		"la resolución autoritativa es contra la DB, no contra la foto del token")
}
