package hid

import (
	"golang.org/x/mobile/event/key"

	"github.com/Alia5/keynames/keys"
)

// MobileCode returns the x/mobile key code of k.
func MobileCode(k keys.Key) (key.Code, bool) {
	u, ok := FromKey(k)
	if !ok {
		return key.CodeUnknown, false
	}
	return key.Code(u), true
}

// FromMobileCode returns the key of an x/mobile key code.
func FromMobileCode(c key.Code) (keys.Key, bool) {
	if c <= key.CodeUnknown || c > 0xFF {
		return keys.Unidentified, false
	}
	return ToKey(Usage(c))
}
