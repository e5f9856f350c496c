package output

import (
	"fmt"
	"io"
)

const banner = `
 ██████╗ ███╗   ██╗███████╗      ██╗  ██╗   ██╗
 ██╔══██╗████╗  ██║██╔════╝      ██║  ╚██╗ ██╔╝
 ██║  ██║██╔██╗ ██║███████╗█████╗██║   ╚████╔╝
 ██║  ██║██║╚██╗██║╚════██║╚════╝██║    ╚██╔╝
 ██████╔╝██║ ╚████║███████║      ███████╗██║
 ╚═════╝ ╚═╝  ╚═══╝╚══════╝      ╚══════╝╚═╝
`

// Banner writes the startup banner. The CLI suppresses it in quiet mode
// and for JSON output so piped output stays machine-readable.
func Banner(w io.Writer, version string) {
	fmt.Fprint(w, banner)
	fmt.Fprintf(w, " DNS Insight Made Simple | v%s\n\n", version)
}
