package output

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatFASTA = "fasta"
)

// Formats lists the output formats in help order.
var Formats = []string{FormatText, FormatFASTA, FormatJSON, FormatJSONL}

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "name\tchromosome\tstart\tstop\tstrand\tlength\tseq"

// IndexTSVHeader heads the chromosome table printed by the index command.
const IndexTSVHeader = "chromosome\tlength\tlines"
