package model

// Theme represents a named UI skin definition record.
//
// A theme cross-references exactly one Extension through ExtensionID. The
// reference points at the extension's join key (Extension.ExtensionID), not
// at its record id. Display attributes are opaque to the backend and passed
// through to clients untouched.
type Theme struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	ExtensionID string `json:"extension_id"`
	// ImageCaptured marks a theme as eligible for random sampling. Themes
	// without a captured preview image are excluded from the scan.
	ImageCaptured bool                   `json:"image_captured"`
	Display       map[string]interface{} `json:"display,omitempty"`
	// Seeded marks records created by the admin seeder for later cleanup.
	Seeded bool `json:"seeded,omitempty"`
}

// ThemeBundle is the response payload for a random theme fetch: the chosen
// theme together with its resolved extension metadata.
type ThemeBundle struct {
	Theme     *Theme     `json:"theme"`
	Extension *Extension `json:"extension"`
}
