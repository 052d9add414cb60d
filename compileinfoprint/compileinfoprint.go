// compileinfoprint is imported by the bpwave command for the side effect of
// printing the build revision to os.Stderr before any work starts.
package compileinfoprint

import "github.com/carbocation/bpwave/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
