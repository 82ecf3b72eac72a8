// Package device models office peripherals as sets of capabilities.
//
// Connectable, Printable and Scannable are the capability contracts. Printer,
// Scanner and PrinterScanner implement them over a shared base that holds the
// model, connection type and link state behind a per-device mutex.
//
// Constructors validate the model and the bounded counters and return an
// error instead of a device when a bound is violated. Operations never fail
// that way: a guard that does not hold yields a Declined Outcome and leaves
// the device untouched. Print and Scan check connectivity before anything else
// on every device type.
package device

var (
	_ Device    = (*Printer)(nil)
	_ Printable = (*Printer)(nil)
	_ Device    = (*Scanner)(nil)
	_ Scannable = (*Scanner)(nil)
	_ Device    = (*PrinterScanner)(nil)
	_ Printable = (*PrinterScanner)(nil)
	_ Scannable = (*PrinterScanner)(nil)
)
