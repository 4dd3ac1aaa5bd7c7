package shared

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// HexInt is a non-negative big integer encoded in JSON as a lowercase hex string without prefix.
type HexInt big.Int

func (h *HexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal((*big.Int)(h).Text(16))
}

func (h *HexInt) UnmarshalJSON(data []byte) error {
	var hexString string
	if err := json.Unmarshal(data, &hexString); err != nil {
		return err
	}
	if hexString == "" || hexString[0] == '-' || hexString[0] == '+' {
		return fmt.Errorf("%w: invalid hex integer %q", ErrMalformed, hexString)
	}
	if _, ok := (*big.Int)(h).SetString(hexString, 16); !ok {
		return fmt.Errorf("%w: invalid hex integer %q", ErrMalformed, hexString)
	}
	return nil
}

type setupJSON struct {
	T uint64  `json:"t"`
	N *HexInt `json:"N"`
}

func (s SetupForVDF) MarshalJSON() ([]byte, error) {
	return json.Marshal(setupJSON{T: s.T, N: (*HexInt)(s.N)})
}

func (s *SetupForVDF) UnmarshalJSON(data []byte) error {
	var v setupJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.T == 0 {
		return fmt.Errorf("%w: missing `t`", ErrMalformed)
	}
	if v.N == nil {
		return fmt.Errorf("%w: missing `N`", ErrMalformed)
	}
	*s = SetupForVDF{T: v.T, N: (*big.Int)(v.N)}
	return nil
}

type unsolvedJSON struct {
	X     *HexInt      `json:"x"`
	Setup *SetupForVDF `json:"setup"`
}

func (u UnsolvedVDF) MarshalJSON() ([]byte, error) {
	return json.Marshal(unsolvedJSON{X: (*HexInt)(u.X), Setup: &u.Setup})
}

func (u *UnsolvedVDF) UnmarshalJSON(data []byte) error {
	var v unsolvedJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.X == nil {
		return fmt.Errorf("%w: missing `x`", ErrMalformed)
	}
	if v.Setup == nil {
		return fmt.Errorf("%w: missing `setup`", ErrMalformed)
	}
	*u = UnsolvedVDF{X: (*big.Int)(v.X), Setup: *v.Setup}
	return nil
}

type solvedJSON struct {
	Instance *UnsolvedVDF `json:"vdf_instance"`
	Y        *HexInt      `json:"y"`
	Pi       *HexInt      `json:"pi"`
}

func (s SolvedVDF) MarshalJSON() ([]byte, error) {
	return json.Marshal(solvedJSON{Instance: &s.Instance, Y: (*HexInt)(s.Y), Pi: (*HexInt)(s.Pi)})
}

func (s *SolvedVDF) UnmarshalJSON(data []byte) error {
	var v solvedJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Instance == nil {
		return fmt.Errorf("%w: missing `vdf_instance`", ErrMalformed)
	}
	if v.Y == nil {
		return fmt.Errorf("%w: missing `y`", ErrMalformed)
	}
	if v.Pi == nil {
		return fmt.Errorf("%w: missing `pi`", ErrMalformed)
	}
	*s = SolvedVDF{Instance: *v.Instance, Y: (*big.Int)(v.Y), Pi: (*big.Int)(v.Pi)}
	return nil
}
