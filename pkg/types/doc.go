// Package types defines the table data model shared by every component:
// columns, typed cell values, rows, the persisted TableData unit, the
// ephemeral ViewSpec, and the standard errors.
//
// The persisted JSON shape of TableData is stable: rows serialize as flat
// objects keyed by column id, with "id" and "note" reserved keys, so a blob
// written by any session store round-trips losslessly.
package types
