package models

import "strconv"

// DriverSummary is one row of the drivers list: a driver and the number of
// deliveries they have completed.
type DriverSummary struct {
	Name       string `bson:"name" json:"name" yaml:"name"`
	Deliveries int    `bson:"deliveries" json:"deliveries" yaml:"deliveries"`
}

// Cells returns the row cells in column order: Name, Deliveries.
func (d DriverSummary) Cells() []string {
	return []string{d.Name, strconv.Itoa(d.Deliveries)}
}

// PartnerSummary is one row of the partners list.
type PartnerSummary struct {
	Name   string `bson:"name" json:"name" yaml:"name"`
	Orders int    `bson:"orders" json:"orders" yaml:"orders"`
}

// Cells returns the row cells in column order: Name, Total Orders.
func (p PartnerSummary) Cells() []string {
	return []string{p.Name, strconv.Itoa(p.Orders)}
}

// LowInventoryAlert flags a partner whose stock of an item is running low.
type LowInventoryAlert struct {
	Partner string `bson:"partner" json:"partner" yaml:"partner"`
	Item    string `bson:"item" json:"item" yaml:"item"`
	Stock   int    `bson:"stock" json:"stock" yaml:"stock"`
}

// Cells returns the row cells in column order: Partner, Item, Stock Left.
func (a LowInventoryAlert) Cells() []string {
	return []string{a.Partner, a.Item, strconv.Itoa(a.Stock)}
}
