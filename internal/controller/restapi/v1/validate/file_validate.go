package validate

const (
	MinListResults     int = 1
	MaxListResults     int = 1000
	DefaultListResults int = 100
)

var (
	AllowedImageTypes = []string{"image/jpeg", "image/png", "image/jpg"}

	AllowedVideoTypes = []string{"video/mp4", "video/quicktime", "video/x-matroska"}
)
