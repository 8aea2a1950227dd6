package app

const (
	SettingPushNotifications = "push_notifications"
	SettingSoundEffects      = "sound_effects"
	SettingDarkMode          = "dark_mode"
)

type Settings struct {
	PushNotifications bool `json:"push_notifications"`
	SoundEffects      bool `json:"sound_effects"`
	DarkMode          bool `json:"dark_mode"`
}

func DefaultSettings() Settings {
	return Settings{PushNotifications: true, SoundEffects: true}
}

// toggle flips the named setting and reports whether the name is known.
func (s *Settings) toggle(name string) bool {
	switch name {
	case SettingPushNotifications:
		s.PushNotifications = !s.PushNotifications
	case SettingSoundEffects:
		s.SoundEffects = !s.SoundEffects
	case SettingDarkMode:
		s.DarkMode = !s.DarkMode
	default:
		return false
	}
	return true
}
