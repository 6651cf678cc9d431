package layout

import "github.com/supafox/supafox/internal/theme"

// themeScript runs before first paint. It resolves the "system" preference
// against prefers-color-scheme and turns the no-JS toggle form into a fetch
// so the page does not reload.
const themeScript = `(function () {
  var root = document.documentElement;
  var media = window.matchMedia("(prefers-color-scheme: dark)");
  function stored() {
    var m = document.cookie.match(/(?:^|; )` + theme.CookieName + `=(light|dark|system)/);
    return m ? m[1] : "system";
  }
  function apply(t) {
    var dark = t === "dark" || (t === "system" && media.matches);
    root.classList.toggle("dark", dark);
    root.classList.toggle("light", !dark);
  }
  apply(stored());
  media.addEventListener("change", function () { if (stored() === "system") { apply("system"); } });
  document.addEventListener("submit", function (event) {
    var form = event.target;
    if (!form.hasAttribute("data-theme-toggle") || !window.fetch) { return; }
    event.preventDefault();
    var next = root.classList.contains("dark") ? "light" : "dark";
    fetch(form.action, {
      method: "POST",
      credentials: "same-origin",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ theme: next })
    }).then(function (res) { if (res.ok) { apply(next); } });
  });
})();`
