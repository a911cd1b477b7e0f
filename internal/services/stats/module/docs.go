package module

import "reposcout/internal/modkit/swaggerkit"

func init() {
	swaggerkit.Register(func(spec map[string]any) {
		paths, ok := spec["paths"].(map[string]any)
		if !ok {
			return
		}
		paths["/stats"] = map[string]any{
			"get": map[string]any{
				"tags":    []any{"Stats"},
				"summary": "Cumulative usage counters since process start",
				"responses": map[string]any{
					"200": map[string]any{"description": "usage counters"},
				},
			},
		}
	})
}
