// Package report renders production plans as terminal tables.
//
// Three views are provided:
//
//   - IO:           per-machine item rates of each technology (items/s in and out).
//   - Technologies: machine rate, demanded cycles and the machine count needed.
//   - Flows:        the aggregated inputs, intermediate and outputs of a plan.
//
// Machine rates depend on the crafting speed of the machine that runs a
// category; DefaultSpeed lists the early-game machines. Numbers are printed
// with thousands separators and a bounded number of decimals.
package report
