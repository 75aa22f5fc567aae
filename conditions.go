package splitter

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/splitter/errors"
)

// AddressLength is the length of all addresses.
const AddressLength = 20

// conditionFormat matches "extension/type/data". The (?s) flag allows any
// byte, including a newline, in the data section.
var conditionFormat = regexp.MustCompile(`(?s)^([a-zA-Z0-9_\-]{3,8})/([a-zA-Z0-9_\-]{3,8})/(.+)$`)

// Condition identifies who can authorize an action. It is of the format
//
//   sprintf("%s/%s/%s", extension, type, data)
//
// Accounts owned by an extension, for example the account of a distributor,
// use the address of a condition created by that extension.
type Condition []byte

// NewCondition returns a condition of the given extension and type.
func NewCondition(ext, typ string, data []byte) Condition {
	pre := fmt.Sprintf("%s/%s/", ext, typ)
	return append([]byte(pre), data...)
}

// Parse extracts the sections of the condition.
func (c Condition) Parse() (ext string, typ string, data []byte, err error) {
	chunks := conditionFormat.FindSubmatch(c)
	if chunks == nil {
		return "", "", nil, errors.ErrInput.Newf("condition: %X", []byte(c))
	}
	return string(chunks[1]), string(chunks[2]), chunks[3], nil
}

// Address returns the address that represents this condition.
func (c Condition) Address() Address {
	return NewAddress(c)
}

func (c Condition) Equals(other Condition) bool {
	return bytes.Equal(c, other)
}

// String returns the extension and type as they are and the data hex
// encoded.
func (c Condition) String() string {
	ext, typ, data, err := c.Parse()
	if err != nil {
		return fmt.Sprintf("Invalid Condition: %X", []byte(c))
	}
	return fmt.Sprintf("%s/%s/%X", ext, typ, data)
}

// Validate returns an error if the condition is not properly formatted.
func (c Condition) Validate() error {
	if !conditionFormat.Match(c) {
		return errors.ErrInput.Newf("condition: %X", []byte(c))
	}
	return nil
}

func (c Condition) MarshalJSON() ([]byte, error) {
	if c == nil {
		return json.Marshal("")
	}
	return json.Marshal(c.String())
}

func (c *Condition) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot decode json: %s", err)
	}
	if enc == "" {
		*c = nil
		return nil
	}
	cond, err := parseCondition(enc)
	if err != nil {
		return err
	}
	*c = cond
	return nil
}

// parseCondition decodes the String representation of a condition.
func parseCondition(s string) (Condition, error) {
	args := strings.Split(s, "/")
	if len(args) != 3 {
		return nil, errors.ErrInput.Newf("invalid condition format: %q", s)
	}
	data, err := hex.DecodeString(args[2])
	if err != nil {
		return nil, errors.ErrInput.Newf("malformed condition data: %s", err)
	}
	return NewCondition(args[0], args[1], data), nil
}

// Address is the identity of an account: the truncated sha256 digest of a
// condition, or any other AddressLength bytes long value.
type Address []byte

// NewAddress hashes and truncates the data into an address.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return h[:AddressLength]
}

func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// Clone returns a copy of the address that does not share the underlying
// memory.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	cpy := make(Address, len(a))
	copy(cpy, a)
	return cpy
}

// Validate returns an error if the address is not of the valid size.
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.ErrInput.Newf("address: %v", a)
	}
	return nil
}

// String returns the upper case hex representation.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Bech32 returns the address bech32 encoded with the given human readable
// part.
func (a Address) Bech32(hrp string) (string, error) {
	payload, err := bech32.ConvertBits(a, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "convert bits")
	}
	raw, err := bech32.Encode(hrp, payload)
	if err != nil {
		return "", errors.Wrap(err, "bech32 encode")
	}
	return raw, nil
}

// MarshalJSON returns the hex representation instead of the base64 encoding
// used for byte slices.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToUpper(hex.EncodeToString(a)))
}

// UnmarshalJSON accepts all formats that ParseAddress does. An empty string
// is a nil address.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot decode json: %s", err)
	}
	addr, err := decodeAddress(enc)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Set implements flag.Value interface.
func (a *Address) Set(enc string) error {
	addr, err := ParseAddress(enc)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// ParseAddress decodes a human readable address. Hex encoding is the
// default, a different format can be selected with a prefix:
//
//   hex:0102030405060708090A0B0C0D0E0F1011121314
//   bech32:<bech32 encoded address, any human readable part>
//   cond:dist/payout/0000000000000001
//
func ParseAddress(s string) (Address, error) {
	a, err := decodeAddress(s)
	if err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// decodeAddress is ParseAddress that allows an empty value, decoded as a nil
// address.
func decodeAddress(s string) (Address, error) {
	format, enc := "hex", s
	if i := strings.Index(s, ":"); i >= 0 {
		format, enc = s[:i], s[i+1:]
	}
	if enc == "" {
		return nil, nil
	}

	var addr Address
	switch format {
	case "hex":
		raw, err := hex.DecodeString(enc)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "cannot decode hex: %s", err)
		}
		addr = raw
	case "bech32":
		_, payload, err := decodeBech32(enc)
		if err != nil {
			return nil, errors.Wrap(err, "deserialize bech32")
		}
		addr = payload
	case "cond":
		c, err := parseCondition(enc)
		if err != nil {
			return nil, err
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return c.Address(), nil
	default:
		return nil, errors.ErrType.Newf("unknown address format %q", format)
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}

// decodeBech32 returns the human readable part and the payload of a bech32
// encoded value.
func decodeBech32(raw string) (string, []byte, error) {
	hrp, payload, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	payload, err = bech32.ConvertBits(payload, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return hrp, payload, nil
}
