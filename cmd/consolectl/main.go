// Command consolectl runs console operations (backups, schedules, exports,
// session cleanup) directly against the database, without the HTTP API.
package main

func main() {
	Execute()
}
