// Package domains holds the curated list of suggested search terms
package domains

// Suggested returns a copy of the curated search terms surfaced by /domains
// ordering is stable so the endpoint output is deterministic
func Suggested() []string {
	out := make([]string, len(suggested))
	copy(out, suggested)
	return out
}

var suggested = []string{
	"machine learning",
	"artificial intelligence",
	"web development",
	"mobile development",
	"data science",
	"blockchain",
	"cybersecurity",
	"devops",
	"react",
	"vue",
	"angular",
	"python",
	"javascript",
	"typescript",
	"go",
	"rust",
	"docker",
	"kubernetes",
	"microservices",
	"api development",
	"database",
	"cloud computing",
	"serverless",
	"game development",
	"computer vision",
	"natural language processing",
	"deep learning",
}
