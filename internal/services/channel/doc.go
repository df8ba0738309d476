// Package channel drives LNURL-channel (LUD-02): it reads the service's
// channel offer and asks the service to open, or cancel, a channel to the
// local node.
package channel
