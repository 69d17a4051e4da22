// Package officeurl owns the office connection descriptor contract.
//
// Ownership boundary:
// - canonical descriptor parsing and formatting
// - raw and percent-decoded parameter views
// - pipe/socket construction defaults
//
// A descriptor has the form
//
//	[uno:]<connection>[,k=v...];<protocol>[,k=v...];<object-id>
//
// e.g. "socket,host=127.0.0.1,port=2002,tcpNoDelay=1;urp;StarOffice.ServiceManager".
// Nothing in this package opens a pipe or socket.
package officeurl
