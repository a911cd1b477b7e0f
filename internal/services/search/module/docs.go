package module

import "reposcout/internal/modkit/swaggerkit"

func init() {
	swaggerkit.Register(func(spec map[string]any) {
		paths, ok := spec["paths"].(map[string]any)
		if !ok {
			return
		}
		result := map[string]any{
			"200": map[string]any{"description": "search results"},
			"400": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
			"503": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
		}
		paths["/search"] = map[string]any{
			"post": map[string]any{
				"tags":      []any{"Search"},
				"summary":   "Search repositories by domain, enriched with READMEs",
				"responses": result,
			},
			"get": map[string]any{
				"tags":      []any{"Search"},
				"summary":   "Search repositories by keywords query, enriched with READMEs",
				"responses": result,
			},
		}
		paths["/search/{domain}"] = map[string]any{
			"get": map[string]any{
				"tags":      []any{"Search"},
				"summary":   "Search repositories by path domain, enriched with READMEs",
				"responses": result,
			},
		}
		paths["/search/{domain}/no-readme"] = map[string]any{
			"get": map[string]any{
				"tags":      []any{"Search"},
				"summary":   "Search repositories by path domain without README enrichment",
				"responses": result,
			},
		}
	})
}
