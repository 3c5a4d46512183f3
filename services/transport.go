// services/transport.go
package services

// Transport is a synchronous delivery channel. Implementations carry
// their own bounded timeout so one unreachable recipient cannot stall
// the dispatcher.
type Transport interface {
	Send(to, subject, body string) error
}
