package inline

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/vizinline/pkg/errors"
)

// DefaultKey selects no specific visualization.
const DefaultKey = -1

// ElementIDPrefix starts every generated element id.
const ElementIDPrefix = "_interpret-viz-"

const initTemplate = `
    <script type="text/javascript">
    console.log("Initializing interpret-inline");
    %s
    </script>
    `

// bodyTemplate loads the bundle through whichever module system the host
// page provides, then calls RenderApp(elementID, object, defaultKey).
const bodyTemplate = `
    <div id="%[1]s"></div>
    <script type="text/javascript">

    (function universalLoad(root, callback) {
      if(typeof exports === 'object' && typeof module === 'object') {
        // CommonJS2
        console.log("CommonJS2");
        var interpretInline = require('interpret-inline');
        callback(interpretInline);
      } else if(typeof define === 'function' && define.amd) {
        // AMD
        console.log("AMD");
        require(['interpret-inline'], function(interpretInline) {
          callback(interpretInline);
        });
      } else if(typeof exports === 'object') {
        // CommonJS
        console.log("CommonJS");
        var interpretInline = require('interpret-inline');
        callback(interpretInline);
      } else {
        // Browser
        console.log("Browser");
        callback(root['interpret-inline']);
      }
    })(this, function(interpretInline) {
        console.log(interpretInline);
        interpretInline.RenderApp("%[1]s", %[2]s, %[3]d);
    });

    </script>
    `

// Markup is the HTML for one render.
type Markup struct {
	// ElementID is the id of the container div.
	ElementID string
	// Init defines the bundle in the page. Emit it once per session.
	Init string
	// Body holds the container div and the loader script.
	Body string
}

// NewElementID returns a fresh container id.
func NewElementID() string {
	return ElementIDPrefix + uuid.NewString()
}

// BuildMarkup reads the script bundle and produces the initialization and
// body scripts for obj. An empty elementID is replaced by [NewElementID].
func (r *Renderer) BuildMarkup(obj Object, elementID string, defaultKey int) (Markup, error) {
	bundle, err := readBundle(r.assets)
	if err != nil {
		return Markup{}, err
	}

	if elementID == "" {
		elementID = NewElementID()
	} else if err := errors.ValidateElementID(elementID); err != nil {
		return Markup{}, err
	}

	payload, err := json.Marshal(obj)
	if err != nil {
		return Markup{}, errors.Wrap(errors.ErrCodeInternal, err, "encode visualization object %q", obj.Name)
	}

	return Markup{
		ElementID: elementID,
		Init:      fmt.Sprintf(initTemplate, bundle),
		Body:      fmt.Sprintf(bodyTemplate, elementID, payload, defaultKey),
	}, nil
}
