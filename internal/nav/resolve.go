package nav

// Screen identifies what to render.
type Screen int

const (
	HomeScreen Screen = iota
	ChoreDetailScreen
	LeaderboardScreen
	FamilyScreen
	SettingsScreen
	MemberDetailScreen
)

var screenNames = [...]string{
	HomeScreen:         "home",
	ChoreDetailScreen:  "chore_detail",
	LeaderboardScreen:  "leaderboard",
	FamilyScreen:       "family",
	SettingsScreen:     "settings",
	MemberDetailScreen: "member_detail",
}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return screenNames[HomeScreen]
	}
	return screenNames[s]
}

func (s Screen) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Target is a resolved render target. ChoreID or UserID is set for the
// detail screens.
type Target struct {
	Screen  Screen
	ChoreID string
	UserID  string
}

// Lookup answers whether entities exist.
type Lookup interface {
	HasChore(id string) bool
	HasUser(id string) bool
}

// Resolve maps a navigation state to the screen to render. A selection that
// no longer exists renders Home; the state itself is left as it is.
func Resolve(s State, l Lookup) Target {
	if s.View == Details && s.SelectedChoreID != "" {
		if l.HasChore(s.SelectedChoreID) {
			return Target{Screen: ChoreDetailScreen, ChoreID: s.SelectedChoreID}
		}
		return Target{Screen: HomeScreen}
	}
	if s.View == MemberDetails && s.SelectedUserID != "" {
		if l.HasUser(s.SelectedUserID) {
			return Target{Screen: MemberDetailScreen, UserID: s.SelectedUserID}
		}
		return Target{Screen: HomeScreen}
	}

	switch s.View {
	case Home:
		return Target{Screen: HomeScreen}
	case Leaderboard:
		return Target{Screen: LeaderboardScreen}
	case Family:
		return Target{Screen: FamilyScreen}
	case Settings:
		return Target{Screen: SettingsScreen}
	case Details, MemberDetails:
		// Detail views without a selection.
		return Target{Screen: HomeScreen}
	default:
		return Target{Screen: HomeScreen}
	}
}
