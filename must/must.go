// Package must converts errors into panics, for use in cmds and
// tests where an error means the input itself is wrong.
package must

// Must2 returns p1, panicking if err is not nil.
func Must2[T1 any](p1 T1, err error) T1 {
	if err != nil {
		panic(err)
	}
	return p1
}

// Must3 returns p1 and p2, panicking if err is not nil.
func Must3[T1, T2 any](p1 T1, p2 T2, err error) (T1, T2) {
	if err != nil {
		panic(err)
	}
	return p1, p2
}
