// SPDX-License-Identifier: Unlicense OR MIT

package app

import "github.com/evloop/evloop/io/key"

// virtualKeyCodes maps macOS virtual key codes (ANSI layout) to key
// codes. Unmapped entries are key.CodeNone:
//
//	0x0a  section sign (ISO keyboards)
//	0x34  unassigned
//	0x39  caps lock
//	0x3a  left option
//	0x3d  right option
//	0x3f  fn
//	0x40  F17
//	0x42  unassigned
//	0x44  unassigned
//	0x46  unassigned
//	0x48  keypad clear
//	0x4d  unassigned
//	0x4f  F18
//	0x50  F19
//	0x5a  F20
//	0x5d  unassigned
//	0x5e  unassigned
//	0x5f  unassigned
//	0x66  unassigned
//	0x68  unassigned
//	0x6a  F16
//	0x6c  unassigned
//	0x6e  unassigned
//	0x70  unassigned
//	0x7f  unassigned
var virtualKeyCodes = [128]key.Code{
	0x00: key.CodeA,
	0x01: key.CodeS,
	0x02: key.CodeD,
	0x03: key.CodeF,
	0x04: key.CodeH,
	0x05: key.CodeG,
	0x06: key.CodeZ,
	0x07: key.CodeX,
	0x08: key.CodeC,
	0x09: key.CodeV,
	0x0b: key.CodeB,
	0x0c: key.CodeQ,
	0x0d: key.CodeW,
	0x0e: key.CodeE,
	0x0f: key.CodeR,
	0x10: key.CodeY,
	0x11: key.CodeT,
	0x12: key.Code1,
	0x13: key.Code2,
	0x14: key.Code3,
	0x15: key.Code4,
	0x16: key.Code6,
	0x17: key.Code5,
	0x18: key.CodeEquals,
	0x19: key.Code9,
	0x1a: key.Code7,
	0x1b: key.CodeMinus,
	0x1c: key.Code8,
	0x1d: key.Code0,
	0x1e: key.CodeRBracket,
	0x1f: key.CodeO,
	0x20: key.CodeU,
	0x21: key.CodeLBracket,
	0x22: key.CodeI,
	0x23: key.CodeP,
	0x24: key.CodeReturn,
	0x25: key.CodeL,
	0x26: key.CodeJ,
	0x27: key.CodeApostrophe,
	0x28: key.CodeK,
	0x29: key.CodeSemicolon,
	0x2a: key.CodeBackslash,
	0x2b: key.CodeComma,
	0x2c: key.CodeSlash,
	0x2d: key.CodeN,
	0x2e: key.CodeM,
	0x2f: key.CodePeriod,
	0x30: key.CodeTab,
	0x31: key.CodeSpace,
	0x32: key.CodeGrave,
	0x33: key.CodeBack,
	0x35: key.CodeEscape,
	0x36: key.CodeRWin,
	0x37: key.CodeLWin,
	0x38: key.CodeLShift,
	0x3b: key.CodeLControl,
	0x3c: key.CodeRShift,
	0x3e: key.CodeRControl,
	0x41: key.CodeDecimal,
	0x43: key.CodeMultiply,
	0x45: key.CodeAdd,
	0x47: key.CodeNumlock,
	0x49: key.CodeVolumeUp,
	0x4a: key.CodeVolumeDown,
	0x4b: key.CodeDivide,
	0x4c: key.CodeNumpadEnter,
	0x4e: key.CodeSubtract,
	0x51: key.CodeNumpadEquals,
	0x52: key.CodeNumpad0,
	0x53: key.CodeNumpad1,
	0x54: key.CodeNumpad2,
	0x55: key.CodeNumpad3,
	0x56: key.CodeNumpad4,
	0x57: key.CodeNumpad5,
	0x58: key.CodeNumpad6,
	0x59: key.CodeNumpad7,
	0x5b: key.CodeNumpad8,
	0x5c: key.CodeNumpad9,
	0x60: key.CodeF5,
	0x61: key.CodeF6,
	0x62: key.CodeF7,
	0x63: key.CodeF3,
	0x64: key.CodeF8,
	0x65: key.CodeF9,
	0x67: key.CodeF11,
	0x69: key.CodeF13,
	0x6b: key.CodeF14,
	0x6d: key.CodeF10,
	0x6f: key.CodeF12,
	0x71: key.CodeF15,
	0x72: key.CodeInsert,
	0x73: key.CodeHome,
	0x74: key.CodePageUp,
	0x75: key.CodeDelete,
	0x76: key.CodeF4,
	0x77: key.CodeEnd,
	0x78: key.CodeF2,
	0x79: key.CodePageDown,
	0x7a: key.CodeF1,
	0x7b: key.CodeLeft,
	0x7c: key.CodeRight,
	0x7d: key.CodeDown,
	0x7e: key.CodeUp,
}

// virtualKeyCode returns the key code for a native virtual key code.
// It is defined for every input; codes outside the table report
// false.
func virtualKeyCode(code uint16) (key.Code, bool) {
	if int(code) >= len(virtualKeyCodes) {
		return key.CodeNone, false
	}
	c := virtualKeyCodes[code]
	return c, c != key.CodeNone
}
