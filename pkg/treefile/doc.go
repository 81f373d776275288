// Package treefile reads and writes desired trees as YAML, TOML or XML.
//
// YAML and TOML share one schema, a node with a name, an optional file flag
// and ordered children:
//
//	name: fauna
//	children:
//	  - name: wild
//	  - name: notes.txt
//	    file: true
//
// XML uses element names for the kind:
//
//	<dir name="fauna">
//	  <dir name="wild"/>
//	  <file name="notes.txt"/>
//	</dir>
package treefile
