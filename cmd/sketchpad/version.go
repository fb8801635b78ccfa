package main

import "fmt"

type versionCmd struct{ r *root }

func (v *versionCmd) Run() error {
	fmt.Fprintf(v.r.stdout, "%s version %s\n", v.r.program, version)
	if commit != "" {
		fmt.Fprintf(v.r.stdout, "commit %s", commit)
		if date != "" {
			fmt.Fprintf(v.r.stdout, " built %s", date)
		}
		fmt.Fprintln(v.r.stdout)
	}
	return nil
}
