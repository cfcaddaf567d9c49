// Package docgen renders attestation documents from roster data. The
// output is a plain .docx: callers only supply the employee fields and
// receive the rendered bytes, everything layout-related stays here.
package docgen

import (
	"fmt"
	"io"
	"time"

	"gitee.com/gooffice/gooffice/document"
	"gitee.com/gooffice/gooffice/schema/soo/wml"

	"github.com/cnet-digital/backoffice-api/schema"
)

const dateLayout = "02/01/2006"

// Attestation writes an attestation document of the given category for
// an employee. The body wording follows the document the HR department
// used to issue by hand; only the employee fields vary.
func Attestation(w io.Writer, category string, employee *schema.Employee, issuedAt time.Time) error {
	doc := document.New()

	title := doc.AddParagraph()
	title.Properties().SetAlignment(wml.ST_JcCenter)
	titleRun := title.AddRun()
	titleRun.Properties().SetBold(true)
	titleRun.Properties().SetSize(16)
	titleRun.AddText(category)

	doc.AddParagraph()

	body := doc.AddParagraph()
	body.Properties().SetAlignment(wml.ST_JcBoth)
	body.AddRun().AddText(fmt.Sprintf(
		"Nous soussignés, Direction des Ressources Humaines, attestons par la présente que "+
			"%s, titulaire de la CIN n° %s, matricule IDBOOST %d, est employé(e) au sein de "+
			"notre société en qualité de %s depuis le %s.",
		employee.FullName,
		employee.CIN,
		employee.IDBoost,
		employee.JobTitle,
		employee.HireDate.Format(dateLayout),
	))

	doc.AddParagraph()

	closing := doc.AddParagraph()
	closing.Properties().SetAlignment(wml.ST_JcBoth)
	closing.AddRun().AddText(
		"La présente attestation est délivrée à l'intéressé(e) pour servir et valoir ce que de droit.")

	doc.AddParagraph()

	issued := doc.AddParagraph()
	issued.Properties().SetAlignment(wml.ST_JcRight)
	issued.AddRun().AddText(fmt.Sprintf("Fait le %s", issuedAt.Format(dateLayout)))

	return doc.Save(w)
}

// Filename returns the download name for an attestation of a category.
func Filename(category string) string {
	return fmt.Sprintf("%s.docx", category)
}
