package session

// Demo returns the scripted walkthrough over the default fleet
// (laserjet, epson, officejet).
func Demo() []Scene {
	return []Scene{
		{
			Title: "Printer",
			Steps: []Step{
				{Device: "laserjet", Op: OpStatus},
				{Device: "laserjet", Op: OpConnect},
				{Device: "laserjet", Op: OpPrint, Arg: "Document1.pdf"},
				{Device: "laserjet", Op: OpPrint, Arg: "Document2.pdf"},
				{Device: "laserjet", Op: OpRefill, Arg: "30"},
				{Device: "laserjet", Op: OpStatus},
				{Device: "laserjet", Op: OpDisconnect},
			},
		},
		{
			Title: "Scanner",
			Steps: []Step{
				{Device: "epson", Op: OpStatus},
				{Device: "epson", Op: OpConnect},
				{Device: "epson", Op: OpScan, Arg: "Photo1.jpg"},
				{Device: "epson", Op: OpScan, Arg: "Document3.pdf"},
				{Device: "epson", Op: OpStatus},
				{Device: "epson", Op: OpDisconnect},
			},
		},
		{
			Title: "Multifunction device",
			Steps: []Step{
				{Device: "officejet", Op: OpStatus},
				{Device: "officejet", Op: OpConnect},
				{Device: "officejet", Op: OpPrint, Arg: "Document4.pdf"},
				{Device: "officejet", Op: OpScan, Arg: "Photo2.jpg"},
				{Device: "officejet", Op: OpRefill, Arg: "20"},
				{Device: "officejet", Op: OpStatus},
				{Device: "officejet", Op: OpDisconnect},
			},
		},
		{
			Title: "Error cases",
			Steps: []Step{
				{Device: "officejet", Op: OpPrint, Arg: "Document5.pdf"},
				{Device: "epson", Op: OpScan, Arg: "Photo3.jpg"},
				{Device: "officejet", Op: OpRefill, Arg: "30"},
			},
		},
	}
}
