// Command linkage reads junction-box coordinates, links the closest pairs
// into circuits and prints the two puzzle answers.
package main

// Version is reported by --version; release builds set it with
// -ldflags "-X main.Version=...".
var Version = "development"

func main() {
	Execute(Version)
}
