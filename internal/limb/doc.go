// Package limb provides carry-aware arithmetic on single 64-bit words.
//
// Every multi-limb operation in the module is built by chaining these
// primitives. Carries and borrows are plain return values holding 0 or 1;
// nothing here can fail.
package limb
