package domain

import "strings"

// Header is the fixed first line of every report
var Header = []string{
	"Symbol",
	"currentPrice",
	"02-screen",
	"03-management",
	"04-moat",
	"total-score",
	"05-mos-ourBuy",
	"05-mos-warren-buy",
}

// FieldSeparator joins the columns of a CSV report line
const FieldSeparator = ", "

// Entity represents a qualifying research folder (e.g., Evaluation/ACME)
type Entity struct {
	Name string // Folder name, used as the report symbol
	Path string
}

// Values holds what was extracted from an entity's latest snapshots
type Values struct {
	Price           float64
	Screen          float64
	Management      float64
	Moat            float64
	DCFBuyPrice     string
	BuffettBuyPrice string
}

// Row is one report line
type Row struct {
	Symbol          string
	Price           float64
	Screen          float64
	Management      float64
	Moat            float64
	Total           float64
	DCFBuyPrice     string
	BuffettBuyPrice string
}

// NewRow builds a row and derives its composite score
func NewRow(symbol string, v Values) Row {
	return Row{
		Symbol:          symbol,
		Price:           v.Price,
		Screen:          v.Screen,
		Management:      v.Management,
		Moat:            v.Moat,
		Total:           v.Screen + v.Management + v.Moat,
		DCFBuyPrice:     v.DCFBuyPrice,
		BuffettBuyPrice: v.BuffettBuyPrice,
	}
}

// Fields returns the row's columns in header order
func (r Row) Fields() []string {
	return []string{
		r.Symbol,
		FormatNumber(r.Price),
		FormatNumber(r.Screen),
		FormatNumber(r.Management),
		FormatNumber(r.Moat),
		FormatNumber(r.Total),
		r.DCFBuyPrice,
		r.BuffettBuyPrice,
	}
}

// String formats the row as a report line
func (r Row) String() string {
	return strings.Join(r.Fields(), FieldSeparator)
}

// Report is the header plus one row per entity, in discovery order
type Report struct {
	Rows []Row
}

// HeaderLine returns the fixed header as a report line
func HeaderLine() string {
	return strings.Join(Header, FieldSeparator)
}
