// Package profile loads the optional HCL settings file. A profile can set
// logging, the pass mode, decoding behaviour and how the output file is
// named. The -log-level and -log-format flags take precedence over the
// matching profile settings.
//
// Example:
//
//	log_level   = "debug"
//	mode        = "chained"
//	auto_orient = true
//
//	output {
//	  name        = "${input.stem}-glitch.png"
//	  compression = "best"
//	}
//
// The output name is an HCL template evaluated with an "input" object that
// exposes dir, stem, ext and format of the decoded input file.
package profile
