package metastore

import (
	"fmt"
	"net"
	"time"
)

// WaitReady blocks until the metastore accepts TCP connections or the
// timeout elapses. The thrift handshake is not attempted; accepting
// connections is the readiness signal.
func (s *Supervisor) WaitReady(timeout time.Duration) error {
	return waitTCP(fmt.Sprintf("localhost:%d", Port), timeout)
}

func waitTCP(addr string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		conn, err := net.DialTimeout("tcp", addr, 2*time.Second)
		if err == nil {
			conn.Close()
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%s not reachable after %s", addr, timeout)
		}
		time.Sleep(500 * time.Millisecond)
	}
}
