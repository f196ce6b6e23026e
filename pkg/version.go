package pkg

import "fmt"

var (
	// These variables are here only to show current version. They are set in makefile during build process
	UmbraVersion         = "devel"
	GitRevision          = "devel"
	UmbraVersionRevision = fmt.Sprintf("%s-%s", UmbraVersion, GitRevision)
)
