package screens

// MenuOption is an entry of the main menu.
type MenuOption int

const (
	MenuStart MenuOption = iota
	MenuDaily
	MenuSettings
	MenuExit
)

func (o MenuOption) String() string {
	switch o {
	case MenuStart:
		return "Start Game"
	case MenuDaily:
		return "Daily Challenge"
	case MenuSettings:
		return "Settings"
	case MenuExit:
		return "Exit"
	}
	return ""
}

// Menu is the main menu cursor.
type Menu struct {
	Options  []MenuOption
	Selected int
}

// NewMenu returns the main menu with the first option selected.
func NewMenu() *Menu {
	return &Menu{Options: []MenuOption{MenuStart, MenuDaily, MenuSettings, MenuExit}}
}

// Up moves the cursor up, wrapping around.
func (m *Menu) Up() {
	n := len(m.Options)
	m.Selected = (m.Selected - 1 + n) % n
}

// Down moves the cursor down, wrapping around.
func (m *Menu) Down() {
	m.Selected = (m.Selected + 1) % len(m.Options)
}

// Current is the option under the cursor.
func (m *Menu) Current() MenuOption {
	return m.Options[m.Selected]
}
