// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sut

// Curated name and marker tables, lowercase. Read-only.
var (
	sirMarkers = []string{"sir"}

	sirPrograms = []string{
		"print_tokens", "print tokens", "print_tokens 2", "print tokens 2",
		"flex", "grep", "sed", "space", "gzip",
		"nano-xml", "nano xml",
		"xml-security", "xml security",
		"ant", "jtopas", "replace", "schedule", "schedule2", "tcas", "totinfo",
	}

	defects4jMarkers = []string{"defects4j", "defect4j", "defects 4j"}

	defects4jProjects = []string{
		"chart", "jfreechart",
		"closure",
		"math", "commons-math", "commons math",
		"lang", "commons-lang", "commons lang",
		"time", "joda-time", "joda time",
		"mockito",
		"cli", "commons-cli", "commons cli",
		"codec", "commons-codec", "commons codec",
		"collections", "commons-collections", "commons collections",
		"compress", "commons-compress", "commons compress",
		"gson", "jsoup", "jxpath",
	}

	apacheMarkers = []string{"apache", "apache software foundation", "asf"}

	apacheProjects = []string{
		"ant", "jmeter", "tomcat", "camel",
		"commons-math", "commons lang", "commons-lang", "commons-io", "commons io",
		"commons-cli", "commons cli", "commons-codec", "commons codec",
		"commons-collections", "commons collections", "commons-compress", "commons compress",
		"struts", "hadoop", "spark", "jfreechart", "xml-security", "xml security",
	}

	industrialMarkers = []string{
		"industrial", "proprietary", "company", "industry",
		"cisco", "abb", "abb robotics", "omicron", "siemens", "bosch",
		"google open source data set", "google open source dataset",
		"google open-source data set", "google dataset",
	}

	otherPublicNames = []string{
		"nopcommerce", "umbraco", "jedit", "freemind", "k9-mail", "k9 mail",
		"open sudoku", "open-sudoku", "tcp-ci-dataset", "tcp ci dataset",
	}

	otherPublicMarkers = []string{
		"open source dataset", "public dataset", "dataset pubblico", "open dataset",
	}
)
