package module

import "reposcout/internal/modkit/swaggerkit"

func init() {
	swaggerkit.Register(func(spec map[string]any) {
		paths, ok := spec["paths"].(map[string]any)
		if !ok {
			return
		}
		ok200 := func(desc string) map[string]any {
			return map[string]any{"200": map[string]any{"description": desc}}
		}
		paths["/"] = map[string]any{
			"get": map[string]any{
				"tags":      []any{"Meta"},
				"summary":   "Service metadata and endpoint directory",
				"responses": ok200("service directory"),
			},
		}
		paths["/health"] = map[string]any{
			"get": map[string]any{
				"tags":      []any{"Meta"},
				"summary":   "Health check with a live upstream probe",
				"responses": ok200("health report"),
			},
		}
		paths["/domains"] = map[string]any{
			"get": map[string]any{
				"tags":      []any{"Meta"},
				"summary":   "Curated suggested search terms",
				"responses": ok200("suggested domains"),
			},
		}
	})
}
