// Package session opens SSH connections and the SFTP subsystem on top of
// them. It is the connection provider the sftp backend of remotefs uses;
// the reconciler itself never sees a connection.
package session
