package model

import (
	"time"

	"bio-page/utils"
)

// Default admin credentials, used when the store file is created on first
// run. Change them from the dashboard after the first login.
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "admin1234"
)

// Record is the entire persisted site state. It is loaded and rewritten
// wholesale on every request that touches it; there are no partial updates.
type Record struct {
	Admin           Admin                 `json:"admin"`
	Profile         Profile               `json:"profile"`
	BioInfo         map[string]string     `json:"bio_info"`
	Skills          []string              `json:"skills"`
	SocialLinks     map[string]SocialLink `json:"social_links"`
	SecondDeveloper SecondDeveloper       `json:"second_developer"`
	Music           Music                 `json:"music"`
	CustomCSS       string                `json:"custom_css"`
	VisitorCount    int                   `json:"visitor_count"`
	CreatedAt       string                `json:"created_at"`
}

// Admin holds the single admin credential. PasswordHash is a SHA256 hex
// digest, never the raw password.
type Admin struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// Profile holds the main public profile fields. All fields are free-form
// strings and may be empty.
type Profile struct {
	Name            string `json:"name"`
	Tagline         string `json:"tagline"`
	About           string `json:"about"`
	ProfilePic      string `json:"profile_pic"`
	BackgroundVideo string `json:"background_video"`
}

// SocialLink is one entry in the social links section. The set of link keys
// is fixed at record initialization; updates only touch fields of existing
// keys.
type SocialLink struct {
	Label   string `json:"label"`
	URL     string `json:"url"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
	Enabled bool   `json:"enabled"`
}

// SecondDeveloper is an optional second persona shown on the public page.
type SecondDeveloper struct {
	Enabled    bool     `json:"enabled"`
	Name       string   `json:"name"`
	About      string   `json:"about"`
	ProfilePic string   `json:"profile_pic"`
	Skills     []string `json:"skills"`
	SocialURL  string   `json:"social_url"`
}

// Music holds the background music player settings.
type Music struct {
	URL      string `json:"url"`
	Autoplay bool   `json:"autoplay"`
}

// DefaultRecord returns a fresh seed record. Every call allocates new maps
// and slices so callers can mutate the result freely.
func DefaultRecord() *Record {
	return &Record{
		Admin: Admin{
			Email:        DefaultAdminEmail,
			PasswordHash: utils.HashPassword(DefaultAdminPassword),
		},
		Profile: Profile{
			Name:            "Your Name",
			Tagline:         "Digital Creator | Developer",
			About:           "Welcome to my little corner of the internet! Edit this text from the admin dashboard.",
			ProfilePic:      "https://i.imgur.com/placeholder.jpg",
			BackgroundVideo: "",
		},
		BioInfo: map[string]string{
			"age":          "18",
			"birthday":     "January 1",
			"location":     "Earth",
			"religion":     "",
			"idol":         "",
			"relationship": "",
			"hobbies":      "Coding, Music",
			"language":     "English",
		},
		Skills: []string{"HTML", "CSS", "JavaScript", "Web Design"},
		SocialLinks: map[string]SocialLink{
			"youtube": {
				Label:   "YouTube",
				URL:     "https://youtube.com/@placeholder",
				Icon:    "fab fa-youtube",
				Color:   "#FF0000",
				Enabled: true,
			},
			"telegram1": {
				Label:   "Telegram Channel",
				URL:     "https://t.me/placeholder",
				Icon:    "fab fa-telegram",
				Color:   "#0088cc",
				Enabled: true,
			},
			"telegram2": {
				Label:   "Telegram Group",
				URL:     "https://t.me/placeholder_group",
				Icon:    "fab fa-telegram",
				Color:   "#0088cc",
				Enabled: true,
			},
			"whatsapp": {
				Label:   "WhatsApp Channel",
				URL:     "https://whatsapp.com/channel/placeholder",
				Icon:    "fab fa-whatsapp",
				Color:   "#25D366",
				Enabled: true,
			},
			"instagram": {
				Label:   "Instagram",
				URL:     "https://instagram.com/placeholder",
				Icon:    "fab fa-instagram",
				Color:   "#E1306C",
				Enabled: true,
			},
			"github": {
				Label:   "GitHub",
				URL:     "https://github.com/placeholder",
				Icon:    "fab fa-github",
				Color:   "#ffffff",
				Enabled: false,
			},
		},
		SecondDeveloper: SecondDeveloper{
			Enabled:    false,
			Name:       "Second Developer",
			About:      "Co-developer and creative partner.",
			ProfilePic: "https://i.imgur.com/placeholder2.jpg",
			Skills:     []string{"Python", "JavaScript"},
			SocialURL:  "https://t.me/placeholder",
		},
		Music: Music{
			URL:      "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3",
			Autoplay: false,
		},
		CustomCSS:    "",
		VisitorCount: 0,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}
}
