// Package mapping provides the YAML schema, loading, validation and the
// registry of API mappings consumed by the conversion engine.
//
// Mapping files are static reference data: the registry is built once and
// only read afterwards.
//
// # Schema Overview
//
// A mapping file has the following structure:
//
//	version: "1"
//	# every key starting with prefix is also registered under each expansion
//	aliases:
//	  - prefix: "nn."
//	    expand: "torch.nn."
//	# source APIs known to exist, whether or not they are mapped
//	apis:
//	  - nn.Conv2d
//	  - nn.AdaptiveAvgPool2d
//	# advice printed for known but unmapped APIs
//	hints:
//	  nn.AdaptiveAvgPool2d: maybe could convert to P.ReduceMean
//	mappings:
//	  nn.Conv2d:
//	    target:
//	      name: nn.Conv2d
//	      kind: ordinary        # ordinary | primitive | indexed
//	      params:               # ordered; REQUIRED marks no default
//	        in_channels: REQUIRED
//	        pad_mode: same
//	        padding: 0
//	      attrs: []             # construction-time params of primitives
//	      index: ""             # subscript param of indexed accessors
//	    source:
//	      name: nn.Conv2d       # defaults to the mapping key
//	      params:
//	        in_channels: REQUIRED
//	        padding: 0
//	    names:                  # target param -> source param
//	      in_channels: in_channels
//	      padding: padding
//	    override: conv2d_pad_mode
//	    keyworded: true         # default: false for primitives
//
// # Parameter Defaults
//
// Plain YAML scalars are normalized the way api.LiteralOf does: strings are
// quoted, booleans become True/False, null becomes None. A scalar tagged
// !expr is used as raw source text, e.g. `stride: !expr (1, 1)`.
//
// # Kinds
//
// When kind is omitted, targets whose name starts with "P." are primitives.
// A primitive target whose source is ".size", or that declares an index
// parameter, is emitted as an indexed accessor.
//
// # Lookup
//
// Registry.Lookup distinguishes APIs without any mapping entry
// (ErrMappingNotFound) from APIs listed under apis that have no mapping
// (ErrUnsupported).
package mapping
