package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/farrowlabs/jumpbox/internal/gamepad"
)

// Mouse button indexes into the Source.MouseButtons triple.
const (
	mouseLeft = iota
	mouseMiddle
	mouseRight
)

// keyAliases folds common synonyms onto canonical key names before the
// code lookup. Lookups happen on lowercased input.
var keyAliases = map[string]string{
	"up arrow":    "up",
	"down arrow":  "down",
	"left arrow":  "left",
	"right arrow": "right",
	"shift":       "left shift",
	"ctrl":        "left ctrl",
	"alt":         "left alt",
	"caps":        "caps lock",
	"enter":       "return",
	"spacebar":    "space",
}

// mouseButtonNames are recognized inside an action's key list and
// tracked apart from keyboard codes. The numeric aliases keep the
// historical ordering where button 3 is the middle button.
var mouseButtonNames = map[string]int{
	"left mouse":   mouseLeft,
	"left click":   mouseLeft,
	"mouse 1":      mouseLeft,
	"middle mouse": mouseMiddle,
	"middle click": mouseMiddle,
	"mouse 3":      mouseMiddle,
	"right mouse":  mouseRight,
	"right click":  mouseRight,
	"mouse 2":      mouseRight,
}

// keyCodes maps canonical key names to ebiten key codes.
var keyCodes = map[string]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3, "4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5,
	"6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7, "8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9,

	"f1": ebiten.KeyF1, "f2": ebiten.KeyF2, "f3": ebiten.KeyF3,
	"f4": ebiten.KeyF4, "f5": ebiten.KeyF5, "f6": ebiten.KeyF6,
	"f7": ebiten.KeyF7, "f8": ebiten.KeyF8, "f9": ebiten.KeyF9,
	"f10": ebiten.KeyF10, "f11": ebiten.KeyF11, "f12": ebiten.KeyF12,

	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,

	"space":     ebiten.KeySpace,
	"return":    ebiten.KeyEnter,
	"escape":    ebiten.KeyEscape,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
	"delete":    ebiten.KeyDelete,
	"insert":    ebiten.KeyInsert,
	"home":      ebiten.KeyHome,
	"end":       ebiten.KeyEnd,
	"page up":   ebiten.KeyPageUp,
	"page down": ebiten.KeyPageDown,

	"left shift":  ebiten.KeyShiftLeft,
	"right shift": ebiten.KeyShiftRight,
	"left ctrl":   ebiten.KeyControlLeft,
	"right ctrl":  ebiten.KeyControlRight,
	"left alt":    ebiten.KeyAltLeft,
	"right alt":   ebiten.KeyAltRight,
	"caps lock":   ebiten.KeyCapsLock,

	"-":  ebiten.KeyMinus,
	"=":  ebiten.KeyEqual,
	",":  ebiten.KeyComma,
	".":  ebiten.KeyPeriod,
	"/":  ebiten.KeySlash,
	";":  ebiten.KeySemicolon,
	"'":  ebiten.KeyQuote,
	"[":  ebiten.KeyBracketLeft,
	"]":  ebiten.KeyBracketRight,
	"\\": ebiten.KeyBackslash,
	"`":  ebiten.KeyBackquote,
}

// padButtonNames maps gamepad button binding names to the button
// enumeration. Trigger names bind the virtual pull buttons.
var padButtonNames = map[string]gamepad.Button{
	"a":                       gamepad.ButtonA,
	"b":                       gamepad.ButtonB,
	"x":                       gamepad.ButtonX,
	"y":                       gamepad.ButtonY,
	"left bumper":             gamepad.ButtonLeftBumper,
	"right bumper":            gamepad.ButtonRightBumper,
	"back":                    gamepad.ButtonBack,
	"start":                   gamepad.ButtonStart,
	"guide":                   gamepad.ButtonGuide,
	"left stick click":        gamepad.ButtonLeftStick,
	"right stick click":       gamepad.ButtonRightStick,
	"left trigger":            gamepad.ButtonLeftTrigger,
	"right trigger":           gamepad.ButtonRightTrigger,
	"left trigger full pull":  gamepad.ButtonLeftTriggerFull,
	"right trigger full pull": gamepad.ButtonRightTriggerFull,
}
