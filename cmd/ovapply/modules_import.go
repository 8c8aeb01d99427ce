package main

// Blank imports ensure module init() registration runs for the CLI binary.
import (
	_ "github.com/oneview-community/ovapply/internal/modules/idpools"
	_ "github.com/oneview-community/ovapply/internal/modules/ipv4range"
	_ "github.com/oneview-community/ovapply/internal/modules/timelocale"
)
