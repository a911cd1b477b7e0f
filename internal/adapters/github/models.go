package github

// Repo is a partial GitHub repository document with fields we use
type Repo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Owner       User   `json:"owner"`
	Language    string `json:"language"`
	Stargazers  int    `json:"stargazers_count"`
	ForksCount  int    `json:"forks_count"`
	Fork        bool   `json:"fork"`
	HTMLURL     string `json:"html_url"`
	APIURL      string `json:"url"`
}

// User is a partial GitHub user or org document
type User struct {
	ID      int64  `json:"id"`
	Login   string `json:"login"`
	Type    string `json:"type"`
	HTMLURL string `json:"html_url"`
}

// searchPage is the wire shape of GET /search/repositories
type searchPage struct {
	TotalCount int    `json:"total_count"`
	Incomplete bool   `json:"incomplete_results"`
	Items      []Repo `json:"items"`
}

// readmePayload is the wire shape of GET /repos/{owner}/{repo}/readme
type readmePayload struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}
