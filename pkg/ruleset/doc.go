// Package ruleset applies temporal constraints declared in YAML or JSON
// documents to decoded records.
//
// A rule document names the fields of a record, their temporal type and the
// constraints they must satisfy:
//
//	zone: Europe/Berlin
//	fields:
//	  opens_at:
//	    type: datetime
//	    rules:
//	      - name: hour_in
//	        values: [9, 10, 11]
//	      - name: working_day
//	  valid_until:
//	    type: date
//	    rules:
//	      - name: after
//	        duration: P1D
//
// The top-level zone is the default zone-id policy of rules without one. It
// only applies to field types that accept it; local types such as date stay
// on the system zone.
//
// Records are plain maps, typically decoded from JSON or YAML. Field values
// are strings in the usual ISO forms ("2024-06-06T10:00:00+02:00",
// "2024-06-06", "10:30", "2024-06", "--06-06"), or numbers for year, month,
// weekday and timestamp (Unix seconds). Missing and null fields are valid.
package ruleset
