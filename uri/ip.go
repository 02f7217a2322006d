/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

const (
	ipv4Len     = 4
	ipv6Len     = 16
	maxH16Len   = 4
	ipv4Octets  = 4
	h16ByteSize = 2
)

// parseIPv4 parses the IPv4address rule of RFC 3986: four dec-octets
// without leading zeros.
func parseIPv4(s string) ([ipv4Len]byte, error) {
	var addr [ipv4Len]byte

	digits := strings.Split(s, ".")
	if len(digits) != ipv4Octets {
		return [ipv4Len]byte{}, errors.New("octets are not properly separated")
	}
	for idx, digit := range digits {
		if digit == "" || len(digit) > 3 || strings.Trim(digit, "0123456789") != "" {
			return [ipv4Len]byte{}, errors.Errorf("invalid octet %q", digit)
		}
		if digit[0] == '0' && len(digit) > 1 {
			// "00", "01"
			return [ipv4Len]byte{}, errors.Errorf("leading zero in octet %q", digit)
		}
		n, err := strconv.ParseUint(digit, 10, 8)
		if err != nil {
			return [ipv4Len]byte{}, errors.Wrap(err, "parse octet")
		}
		addr[idx] = byte(n)
	}
	return addr, nil
}

// parseIPv6 parses the IPv6address rule of RFC 3986. An embedded IPv4
// address is only allowed as the last 32 bits.
func parseIPv6(s string) ([ipv6Len]byte, error) {
	var addr [ipv6Len]byte

	before, after, found := strings.Cut(s, "::")
	if !found {
		b, err := parseIPv6Frag(s, true)
		if err != nil {
			return addr, err
		}
		if len(b) != ipv6Len {
			return addr, errors.New("address is not 128 bits long")
		}
		copy(addr[:], b)
		return addr, nil
	}

	head, err := parseIPv6Frag(before, false)
	if err != nil {
		return addr, errors.Wrap(err, "parse groups before ::")
	}
	tail, err := parseIPv6Frag(after, true)
	if err != nil {
		return addr, errors.Wrap(err, "parse groups after ::")
	}
	// "::" stands for at least one group of zeros.
	if len(head)+len(tail) > ipv6Len-h16ByteSize {
		return addr, errors.New("address too long")
	}
	copy(addr[:len(head)], head)
	copy(addr[ipv6Len-len(tail):], tail)
	return addr, nil
}

// parseIPv6Frag parses colon-separated h16 groups. When isLast is set, the
// final group may be a dotted IPv4 address.
func parseIPv6Frag(s string, isLast bool) ([]byte, error) {
	if s == "" {
		return nil, nil
	}

	groups := strings.Split(s, ":")
	out := make([]byte, 0, len(groups)*h16ByteSize)
	for idx, h16 := range groups {
		if h16 == "" {
			// "1:::", "1::2::3"
			return nil, errors.New("invalid use of colon separator")
		}
		if isLast && idx == len(groups)-1 && strings.Contains(h16, ".") {
			v4, err := parseIPv4(h16)
			if err != nil {
				return nil, errors.Wrap(err, "parse trailing IPv4 address")
			}
			out = append(out, v4[:]...)
			continue
		}
		if len(h16) > maxH16Len {
			return nil, errors.Errorf("group %q longer than four digits", h16)
		}
		n, err := strconv.ParseUint(h16, 16, 16)
		if err != nil {
			return nil, errors.Wrapf(err, "parse group %q", h16)
		}
		out = append(out, byte(n>>8), byte(n&0xFF))
	}
	return out, nil
}
