package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultBuyPrice is reported when a margin-of-safety snapshot has no usable value
const DefaultBuyPrice = "0"

// DataSnapshot is the 01-data record
type DataSnapshot struct {
	Price *float64 `json:"Price"`
}

// ScreenSnapshot is the 02-screen record
type ScreenSnapshot struct {
	Rating *float64 `json:"rating"`
}

// ScoreSnapshot is shared by 03-management and 04-moat
type ScoreSnapshot struct {
	Score *float64 `json:"score"`
}

// BuyAnalysis is one valuation sub-record of a 05-mos snapshot
type BuyAnalysis struct {
	BuyPrice *BuyPrice `json:"buyPrice"`
}

// MosSnapshot is the 05-mos record
type MosSnapshot struct {
	DCFAnalysis           *BuyAnalysis `json:"dcfAnalysis"`
	WarrenBuffettAnalysis *BuyAnalysis `json:"warrenBuffettAnalysis"`
}

// BuyPrice keeps the buy price text exactly as written in the snapshot.
// Analysis tools emit it as a string, but a bare number is accepted and
// keeps its literal form.
type BuyPrice string

func (p *BuyPrice) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = BuyPrice(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("buyPrice must be a string or number, got %s", data)
	}
	*p = BuyPrice(n.String())
	return nil
}

// Snapshot keys are matched exactly. encoding/json folds case when filling
// struct fields, so each record looks its keys up by hand and a key spelled
// any other way counts as absent.

func (s *DataSnapshot) UnmarshalJSON(data []byte) error {
	return decodeFields(data, field{"Price", &s.Price})
}

func (s *ScreenSnapshot) UnmarshalJSON(data []byte) error {
	return decodeFields(data, field{"rating", &s.Rating})
}

func (s *ScoreSnapshot) UnmarshalJSON(data []byte) error {
	return decodeFields(data, field{"score", &s.Score})
}

func (a *BuyAnalysis) UnmarshalJSON(data []byte) error {
	return decodeFields(data, field{"buyPrice", &a.BuyPrice})
}

func (s *MosSnapshot) UnmarshalJSON(data []byte) error {
	return decodeFields(data,
		field{"dcfAnalysis", &s.DCFAnalysis},
		field{"warrenBuffettAnalysis", &s.WarrenBuffettAnalysis},
	)
}

type field struct {
	key string
	dst any
}

func decodeFields(data []byte, fields ...field) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, f := range fields {
		value, ok := raw[f.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, f.dst); err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
	}
	return nil
}

// DecodeSnapshot parses snapshot bytes into one of the typed records
func DecodeSnapshot(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	return nil
}

// ExtractPrice returns the current price, 0 when absent
func ExtractPrice(s *DataSnapshot) float64 {
	if s == nil || s.Price == nil {
		return 0
	}
	return *s.Price
}

// ExtractRating returns the screen rating and whether the snapshot carried one.
// A missing rating counts as 0 so the composite score stays defined.
func ExtractRating(s *ScreenSnapshot) (float64, bool) {
	if s == nil || s.Rating == nil {
		return 0, false
	}
	return *s.Rating, true
}

// ExtractScore returns a management or moat score, 0 when absent
func ExtractScore(s *ScoreSnapshot) float64 {
	if s == nil || s.Score == nil {
		return 0
	}
	return *s.Score
}

// ExtractBuyPrices returns the DCF and Buffett buy prices.
// Both fall back to DefaultBuyPrice unless both analyses are present.
func ExtractBuyPrices(s *MosSnapshot) (dcf, buffett string) {
	if s == nil || s.DCFAnalysis == nil || s.WarrenBuffettAnalysis == nil {
		return DefaultBuyPrice, DefaultBuyPrice
	}
	return s.DCFAnalysis.price(), s.WarrenBuffettAnalysis.price()
}

func (a *BuyAnalysis) price() string {
	if a.BuyPrice == nil {
		return DefaultBuyPrice
	}
	return string(*a.BuyPrice)
}

// FormatNumber renders a value in its shortest form (7, 101.5). Magnitudes
// of 1e21 and above or below 1e-6 switch to exponent notation (1e+21, 1e-7).
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}

	abs := math.Abs(v)
	if abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// Go pads the exponent to two digits
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}
