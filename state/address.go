package state

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is a 48-bit IEEE 802.15.4 extended (MAC) address.
type Address uint64

var addressSeparators = strings.NewReplacer(":", "", ".", "", "-", "", " ", "")

// Hex returns the 12 digit, zero padded, lowercase hex form.
func (a Address) Hex() string {
	return fmt.Sprintf("%012x", uint64(a))
}

// String returns the colon separated, uppercase octet form, e.g. 0A:AA:00:00:00:01.
func (a Address) String() string {
	s, _ := HexToColon(a.Hex())
	return s
}

// Add offsets the address by n, failing if the result leaves the 48-bit range.
func (a Address) Add(n int) (Address, error) {
	v := int64(a) + int64(n)
	if v < 0 || v > int64(MaxAddress) {
		return 0, fmt.Errorf("%w: address %s + %d is outside the 48-bit range", ErrConfig, a, n)
	}
	return Address(v), nil
}

// ParseAddress accepts any hex form of an address. The separators ':', '.',
// '-' and ' ' are removed before the remaining digits are parsed as hex.
func ParseAddress(text string) (Address, error) {
	digits := addressSeparators.Replace(text)
	if digits == "" {
		return 0, fmt.Errorf("%w: empty address %q", ErrFormat, text)
	}
	if len(digits) > AddressBits/4 {
		return 0, fmt.Errorf("%w: address %q has %d hex digits, at most %d allowed", ErrFormat, text, len(digits), AddressBits/4)
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: address %q is not hexadecimal", ErrFormat, text)
	}
	return Address(v), nil
}

// MustParseAddress is like ParseAddress but panics on error.
func MustParseAddress(text string) Address {
	a, err := ParseAddress(text)
	if err != nil {
		panic(err)
	}
	return a
}

// HexToColon groups a hex string into uppercase octets joined by ':'.
func HexToColon(hex string) (string, error) {
	if len(hex)%2 != 0 {
		return "", fmt.Errorf("%w: %q has an odd number of hex digits", ErrFormat, hex)
	}
	octets := make([]string, 0, len(hex)/2)
	for i := 0; i < len(hex); i += 2 {
		o := hex[i : i+2]
		if _, err := strconv.ParseUint(o, 16, 8); err != nil {
			return "", fmt.Errorf("%w: %q is not a hex octet", ErrFormat, o)
		}
		octets = append(octets, strings.ToUpper(o))
	}
	return strings.Join(octets, ":"), nil
}
