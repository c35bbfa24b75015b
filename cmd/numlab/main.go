// SPDX-License-Identifier: MIT

// Command numlab runs the numerical kernels of this module from the shell:
// linear systems, root finding, quadrature and interpolation.
//
// Usage:
//
//	numlab solve system.yaml --method all --tol 1e-6 --chart convergence.html
//	numlab roots --method all --tol 1e-4
//	numlab integrate --a 0.8 --b 1.6 --n 8 --n 20
//	numlab interp table.yaml --method newton
//
// Every flag can also be set through NUMLAB_<FLAG> environment variables
// (dashes become underscores) or a YAML file passed with --config.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
