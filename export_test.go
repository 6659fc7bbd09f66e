package slz

// SetExit replaces the function the perror handler exits with.
func SetExit(f func(int)) (restore func()) {
	old := exit
	exit = f
	return func() { exit = old }
}
