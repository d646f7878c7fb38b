// SPDX-License-Identifier: Unlicense OR MIT

package key

import "strconv"

// Code is a symbolic, layout independent key identifier.
type Code uint8

// CodeNone marks a key the platform table does not map.
const CodeNone Code = 0

const (
	Code1 Code = iota + 1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9
	Code0

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	CodeEscape
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
	CodeF13
	CodeF14
	CodeF15

	CodeInsert
	CodeHome
	CodeDelete
	CodeEnd
	CodePageDown
	CodePageUp

	CodeLeft
	CodeUp
	CodeRight
	CodeDown

	CodeBack
	CodeReturn
	CodeSpace
	CodeTab

	CodeNumlock
	CodeNumpad0
	CodeNumpad1
	CodeNumpad2
	CodeNumpad3
	CodeNumpad4
	CodeNumpad5
	CodeNumpad6
	CodeNumpad7
	CodeNumpad8
	CodeNumpad9
	CodeNumpadEnter
	CodeNumpadEquals
	CodeAdd
	CodeSubtract
	CodeMultiply
	CodeDivide
	CodeDecimal

	CodeApostrophe
	CodeBackslash
	CodeComma
	CodeEquals
	CodeGrave
	CodeLBracket
	CodeMinus
	CodePeriod
	CodeRBracket
	CodeSemicolon
	CodeSlash

	CodeLAlt
	CodeLControl
	CodeLShift
	CodeLWin
	CodeRControl
	CodeRShift
	CodeRWin

	CodeVolumeDown
	CodeVolumeUp

	codeCount
)

var codeNames = [codeCount]string{
	CodeNone: "None",
	Code1:    "1", Code2: "2", Code3: "3", Code4: "4", Code5: "5",
	Code6: "6", Code7: "7", Code8: "8", Code9: "9", Code0: "0",
	CodeA: "A", CodeB: "B", CodeC: "C", CodeD: "D", CodeE: "E", CodeF: "F",
	CodeG: "G", CodeH: "H", CodeI: "I", CodeJ: "J", CodeK: "K", CodeL: "L",
	CodeM: "M", CodeN: "N", CodeO: "O", CodeP: "P", CodeQ: "Q", CodeR: "R",
	CodeS: "S", CodeT: "T", CodeU: "U", CodeV: "V", CodeW: "W", CodeX: "X",
	CodeY: "Y", CodeZ: "Z",
	CodeEscape: "⎋",
	CodeF1:     "F1", CodeF2: "F2", CodeF3: "F3", CodeF4: "F4", CodeF5: "F5",
	CodeF6: "F6", CodeF7: "F7", CodeF8: "F8", CodeF9: "F9", CodeF10: "F10",
	CodeF11: "F11", CodeF12: "F12", CodeF13: "F13", CodeF14: "F14", CodeF15: "F15",
	CodeInsert:       "Insert",
	CodeHome:         "⇱",
	CodeDelete:       "⌦",
	CodeEnd:          "⇲",
	CodePageDown:     "⇟",
	CodePageUp:       "⇞",
	CodeLeft:         "←",
	CodeUp:           "↑",
	CodeRight:        "→",
	CodeDown:         "↓",
	CodeBack:         "⌫",
	CodeReturn:       "⏎",
	CodeSpace:        "Space",
	CodeTab:          "Tab",
	CodeNumlock:      "Numlock",
	CodeNumpad0:      "Numpad0",
	CodeNumpad1:      "Numpad1",
	CodeNumpad2:      "Numpad2",
	CodeNumpad3:      "Numpad3",
	CodeNumpad4:      "Numpad4",
	CodeNumpad5:      "Numpad5",
	CodeNumpad6:      "Numpad6",
	CodeNumpad7:      "Numpad7",
	CodeNumpad8:      "Numpad8",
	CodeNumpad9:      "Numpad9",
	CodeNumpadEnter:  "⌤",
	CodeNumpadEquals: "Numpad=",
	CodeAdd:          "Numpad+",
	CodeSubtract:     "Numpad-",
	CodeMultiply:     "Numpad*",
	CodeDivide:       "Numpad/",
	CodeDecimal:      "Numpad.",
	CodeApostrophe:   "'",
	CodeBackslash:    "\\",
	CodeComma:        ",",
	CodeEquals:       "=",
	CodeGrave:        "`",
	CodeLBracket:     "[",
	CodeMinus:        "-",
	CodePeriod:       ".",
	CodeRBracket:     "]",
	CodeSemicolon:    ";",
	CodeSlash:        "/",
	CodeLAlt:         "LAlt",
	CodeLControl:     "LCtrl",
	CodeLShift:       "LShift",
	CodeLWin:         "L⌘",
	CodeRControl:     "RCtrl",
	CodeRShift:       "RShift",
	CodeRWin:         "R⌘",
	CodeVolumeDown:   "VolumeDown",
	CodeVolumeUp:     "VolumeUp",
}

func (c Code) String() string {
	if c < codeCount {
		return codeNames[c]
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}
