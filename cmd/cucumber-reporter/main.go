// --- START OF FINAL REVISED FILE cmd/cucumber-reporter/main.go ---
package main

// main is the entry point for the cucumber-reporter application.
// Build-time variables 'version', 'commit' and 'date' live in root.go and are
// populated via -ldflags.
func main() {
	Execute()
}

// --- END OF FINAL REVISED FILE cmd/cucumber-reporter/main.go ---
