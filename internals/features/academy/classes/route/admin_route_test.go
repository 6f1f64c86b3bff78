// file: internals/features/academy/classes/route/admin_route_test.go
package route

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newAdminApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	ClassesAdminRoutes(app.Group("/api/a"), nil)
	return app
}

// El detach de colaborador va por clase+profesor: la ruta declara los dos
// parámetros y el handler los lee los dos.
func TestRemoveCollaboratorRouteShape(t *testing.T) {
	app := newAdminApp(t)

	const want = "/api/a/classes/:id/collaborators/:teacher_id"
	found := false
	for _, r := range app.GetRoutes() {
		if r.Method == fiber.MethodDelete && r.Path == want {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("ruta DELETE %s no registrada", want)
	}
}

func TestRemoveCollaboratorParamValidation(t *testing.T) {
	app := newAdminApp(t)

	tests := []struct {
		name     string
		path     string
		wantMsg  string
		wantCode int
	}{
		{
			name:     "class id no UUID",
			path:     "/api/a/classes/no-es-uuid/collaborators/6f1e1f9e-6f63-4b3a-9a54-0d2ad4e4f111",
			wantMsg:  "ID de clase inválido",
			wantCode: fiber.StatusBadRequest,
		},
		{
			name:     "teacher id no UUID",
			path:     "/api/a/classes/6f1e1f9e-6f63-4b3a-9a54-0d2ad4e4f111/collaborators/tampoco",
			wantMsg:  "ID de profesor inválido",
			wantCode: fiber.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodDelete, tc.path, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.wantCode {
				t.Fatalf("status = %d, esperaba %d", resp.StatusCode, tc.wantCode)
			}
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("leyendo body: %v", err)
			}
			if !strings.Contains(string(body), tc.wantMsg) {
				t.Errorf("body = %s, esperaba que contuviera %q", body, tc.wantMsg)
			}
		})
	}
}
