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
	"strings"
)

const (
	// ipvFutureParts is the number of parts expected in an IPvFuture literal
	// (e.g., "v1.abc"), separated by a dot.
	ipvFutureParts = 2
)

// HostKind is the syntactic form of a host, per RFC 3986, Section 3.2.2.
type HostKind int

const (
	// HostRegName is a registered name, typically a DNS name. The empty
	// host is a registered name.
	HostRegName HostKind = iota
	// HostIPv4 is a dotted-decimal IPv4 address.
	HostIPv4
	// HostIPv6 is a bracketed IPv6 address.
	HostIPv6
	// HostIPvFuture is a bracketed IPvFuture literal ("[v1.x]").
	HostIPvFuture
)

func (k HostKind) String() string {
	switch k {
	case HostIPv4:
		return "IPv4"
	case HostIPv6:
		return "IPv6"
	case HostIPvFuture:
		return "IPvFuture"
	default:
		return "reg-name"
	}
}

// newAuthority splits an authority string into its subcomponents.
func newAuthority(authority string) *Authority {
	a := &Authority{}
	a.userinfo, a.hasUserinfo, a.host, a.port, a.hasPort = splitAuthority(authority)
	return a
}

// splitAuthority is the single, stateless utility function that parses an authority
// string into its userinfo, host, and port components.
func splitAuthority(authority string) (userinfo string, hasUserinfo bool, host, port string, hasPort bool) {
	hostport := authority
	if endUserinfo := strings.LastIndex(authority, "@"); endUserinfo != -1 {
		userinfo = authority[:endUserinfo]
		hasUserinfo = true
		hostport = authority[endUserinfo+1:]
	}

	if strings.HasPrefix(hostport, "[") {
		endBracket := strings.IndexByte(hostport, ']')
		if endBracket == -1 {
			return userinfo, hasUserinfo, hostport, "", false
		}
		host = hostport[:endBracket+1]
		if len(hostport) > endBracket+1 && hostport[endBracket+1] == ':' {
			port = hostport[endBracket+2:]
			hasPort = true
		}
		return userinfo, hasUserinfo, host, port, hasPort
	}

	if endHost := strings.LastIndex(hostport, ":"); endHost != -1 {
		return userinfo, hasUserinfo, hostport[:endHost], hostport[endHost+1:], true
	}
	return userinfo, hasUserinfo, hostport, "", false
}

// classifyHost returns the syntactic form of host. A host matching the
// IPv4address rule is an IPv4 address; any other unbracketed host is a
// registered name, even when it looks like a malformed dotted quad
// ("999.1.1.1"), per RFC 3986, Section 3.2.2.
func classifyHost(host string) HostKind {
	if strings.HasPrefix(host, "[") {
		if len(host) > 1 && (host[1] == 'v' || host[1] == 'V') {
			return HostIPvFuture
		}
		return HostIPv6
	}
	if _, err := parseIPv4(host); err == nil {
		return HostIPv4
	}
	return HostRegName
}

// validateHost checks the host component: IP literal structure, IPv4
// addresses, or the reg-name character class.
func (v validator) validateHost(host string, offset int) error {
	switch classifyHost(host) {
	case HostIPv4:
		return nil
	case HostIPv6, HostIPvFuture:
		if !strings.HasSuffix(host, "]") || len(host) < 2 {
			return &ValidationError{
				Component: ComponentHost, Offset: offset, Details: host, Err: ErrInvalidHost,
			}
		}
		return validateIPLiteral(host[1:len(host)-1], offset+1)
	}

	if err := v.checkChars(host, ComponentHost, offset, v.class(regNameChars)); err != nil {
		return err
	}
	if v.iri {
		return validateBidiHost(host, offset)
	}
	return nil
}

// validateIPLiteral checks if a string inside brackets is a valid IPv6 or IPvFuture address.
func validateIPLiteral(ipLiteral string, offset int) error {
	if strings.HasPrefix(ipLiteral, "v") || strings.HasPrefix(ipLiteral, "V") {
		return validateIPvFuture(ipLiteral, offset)
	}
	if _, err := parseIPv6(ipLiteral); err != nil {
		return &ValidationError{
			Component: ComponentHost,
			Offset:    offset,
			Details:   ipLiteral + ": " + err.Error(),
			Err:       ErrInvalidHost,
		}
	}
	return nil
}

// validateIPvFuture validates an IPvFuture literal (e.g., "v1.something").
func validateIPvFuture(ip string, offset int) error {
	invalid := func(at int, c rune, details string) error {
		return &ValidationError{
			Component: ComponentHost, Offset: offset + at, Char: c, Details: details, Err: ErrInvalidHost,
		}
	}

	parts := strings.SplitN(ip[1:], ".", ipvFutureParts)
	if len(parts) != ipvFutureParts {
		return invalid(0, 0, "IPvFuture without dot separator: "+ip)
	}
	version, address := parts[0], parts[1]
	if version == "" {
		return invalid(1, 0, "IPvFuture without version: "+ip)
	}
	for i, r := range version {
		if !isASCIIHexDigit(r) {
			return invalid(1+i, r, "")
		}
	}
	if address == "" {
		return invalid(len(ip), 0, "IPvFuture with empty address: "+ip)
	}
	for i, r := range address {
		if !isUnreservedOrSubDelims(r) && r != ':' {
			return invalid(len(version)+2+i, r, "")
		}
	}
	return nil
}

// validatePort checks that the port only contains digits.
func validatePort(port string, offset int) error {
	for i, r := range port {
		if !isASCIIDigit(r) {
			return &ValidationError{Component: ComponentPort, Offset: offset + i, Char: r, Err: ErrInvalidPort}
		}
	}
	return nil
}
