package version

type Version struct {
	Client string `json:"client"`
	Go     string `json:"go"`
}
