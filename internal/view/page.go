package view

// Page copy shared by the dashboard, the terminal renderer and the TUI.
const (
	Title = "Ireland Gender Pay Gap Analysis"

	AboutTitle = "About Gender Pay Gap"
	About      = `The gender pay gap does not measure equal pay. It measures the difference between the
average and median hourly pay of men and women. Equal pay is the separate legal obligation under
the Employment Equality Acts to pay men and women equally for equal work.

There is no equivalent reporting requirement in the US. See the [US Department of Labor brief](https://www.dol.gov/sites/dolgov/files/WB/equalpay/WB_issuebrief-undstg-wage-gap-v1.pdf)
on the wage gap within occupations.`

	DataSourceTitle = "Data Source"
	DataSource      = `Since 2022, employers in Ireland with more than 250 employees must publish their gender pay gap.

[Data source](https://paygap.ie/)

[Data source GitHub](https://github.com/zenbuffy/irishGenderPayGap/tree/main)`

	PayGapTitle   = "Pay Gap Details"
	QuartileTitle = "Proportion of Men and Women in Each Pay Quartile"
	ReportHint    = "**For more company-specific details, see the report link in the table below.**"

	// NoReport is shown when the selected company did not report for the year.
	NoReport = "No report found for this company and year."
)
