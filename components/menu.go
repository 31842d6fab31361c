package components

import "github.com/yohamta/donburi"

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuNewGame MainMenuOption = iota
	MainMenuSettings
	MainMenuQuit
)

var MainMenuOptions = []MainMenuOption{MainMenuNewGame, MainMenuSettings, MainMenuQuit}

func (o MainMenuOption) String() string {
	switch o {
	case MainMenuNewGame:
		return "New Game"
	case MainMenuSettings:
		return "Settings"
	case MainMenuQuit:
		return "Quit"
	}
	return ""
}

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex int
	BestSeconds   float64 // longest survival recorded, 0 = none yet
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
