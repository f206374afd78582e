// Package config provides configuration management for folio.
//
// Configuration is YAML and layered; later layers override earlier ones:
//
//  1. Default configuration (compiled in)
//     - A complete sample portfolio so folio works out-of-the-box
//
//  2. User configuration (~/.config/folio/config.yaml)
//     - The owner's real profile and content
//
//  3. Project configuration (./.folio/config.yaml)
//     - Per-directory overrides, e.g. a talk-specific contact address
//
// An explicit path (--config) replaces layers 2 and 3.
//
// # Configuration Structure
//
//	owner:
//	  name: "Sam Rivera"
//	  title: "Backend Engineer"
//	  email: "sam@example.dev"
//	ui:
//	  transitionDuration: 600ms
//	  carouselInterval: 5s
//	  projectsPerPage: 6
//	  disableBackground: false
//	content:
//	  about: |
//	    Markdown rendered in the About pane.
//	  stats:
//	    - label: "Projects"
//	      value: "40+"
//	  projects:
//	    - name: "tracer"
//	      description: "..."
//	      tags: ["go", "grpc"]
//
// # Merging
//
// Scalars override when the overlay sets a non-zero value. Lists replace the
// base list wholesale when the overlay provides at least one element.
package config
